package irys

import "strconv"

// ANS-104 signature scheme identifiers
type SignatureType int

const (
	SignatureTypeArweave SignatureType = 1
	SignatureTypeSolana  SignatureType = 4
)

func (self SignatureType) Bytes() []byte {
	return []byte(strconv.Itoa(int(self)))
}
