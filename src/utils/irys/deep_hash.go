package irys

import (
	"crypto/sha512"
	"strconv"
)

// DeepHash computes the Arweave deep hash of a nested structure of byte
// blobs, the value every ANS-104 signature commits to. SHA-384 throughout.
func DeepHash(value any) [48]byte {
	switch v := value.(type) {
	case []any:
		tag := append([]byte("list"), []byte(strconv.Itoa(len(v)))...)
		return deepHashChunks(v, sha512.Sum384(tag))
	case string:
		return deepHashBlob([]byte(v))
	case Base64String:
		return deepHashBlob(v)
	case []byte:
		return deepHashBlob(v)
	default:
		panic("unsupported deep hash type")
	}
}

func deepHashBlob(blob []byte) [48]byte {
	tag := append([]byte("blob"), []byte(strconv.Itoa(len(blob)))...)
	tagHash := sha512.Sum384(tag)
	blobHash := sha512.Sum384(blob)
	return sha512.Sum384(append(tagHash[:], blobHash[:]...))
}

func deepHashChunks(chunks []any, acc [48]byte) [48]byte {
	for _, chunk := range chunks {
		chunkHash := DeepHash(chunk)
		acc = sha512.Sum384(append(acc[:], chunkHash[:]...))
	}
	return acc
}
