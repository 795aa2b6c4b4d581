package solana

import (
	"bytes"
	"io"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
)

type Blockhash [32]byte

func BlockhashFromBase58(s string) (out Blockhash, err error) {
	buf, err := base58.Decode(s)
	if err != nil || len(buf) != 32 {
		err = ErrBadBlockhash
		return
	}
	copy(out[:], buf)
	return
}

func (self Blockhash) ToBase58() string {
	return base58.Encode(self[:])
}

type MessageVersion byte

const (
	MessageVersionLegacy MessageVersion = iota
	MessageVersionV0
)

type MessageHeader struct {
	NumRequiredSignatures uint8
	NumReadonlySigned     uint8
	NumReadonlyUnsigned   uint8
}

type CompiledInstruction struct {
	ProgramIDIndex uint8
	AccountIndexes []uint8
	Data           []byte
}

// A transaction message bound to a recent blockhash. Accounts are laid out in
// the protocol mandated order: fee payer, writable signers, readonly signers,
// writable non-signers, readonly non-signers.
type Message struct {
	Version         MessageVersion
	Header          MessageHeader
	AccountKeys     []common.PublicKey
	RecentBlockhash Blockhash
	Instructions    []CompiledInstruction
}

type accountFlags struct {
	signer   bool
	writable bool
}

// CompileMessage folds an ordered instruction list into a message. Instruction
// order is preserved verbatim, the ledger guarantees no ordering besides it.
func CompileMessage(version MessageVersion, feePayer common.PublicKey, recentBlockhash Blockhash, instructions []types.Instruction) (self Message, err error) {
	// Collect accounts in order of first appearance, merging flags
	order := []common.PublicKey{feePayer}
	flags := map[common.PublicKey]*accountFlags{
		feePayer: {signer: true, writable: true},
	}
	visit := func(key common.PublicKey, signer, writable bool) {
		f, ok := flags[key]
		if !ok {
			f = new(accountFlags)
			flags[key] = f
			order = append(order, key)
		}
		f.signer = f.signer || signer
		f.writable = f.writable || writable
	}

	for _, instruction := range instructions {
		for _, account := range instruction.Accounts {
			visit(account.PubKey, account.IsSigner, account.IsWritable)
		}
		visit(instruction.ProgramID, false, false)
	}

	// Partition into the mandated sections, keeping first-appearance order
	// within each section. The fee payer always goes first.
	var writableSigners, readonlySigners, writableOthers, readonlyOthers []common.PublicKey
	for _, key := range order {
		f := flags[key]
		switch {
		case f.signer && f.writable:
			writableSigners = append(writableSigners, key)
		case f.signer:
			readonlySigners = append(readonlySigners, key)
		case f.writable:
			writableOthers = append(writableOthers, key)
		default:
			readonlyOthers = append(readonlyOthers, key)
		}
	}

	numSigners := len(writableSigners) + len(readonlySigners)
	if numSigners > 255 {
		err = ErrTooManyRequiredSigners
		return
	}

	self.Version = version
	self.Header = MessageHeader{
		NumRequiredSignatures: uint8(numSigners),
		NumReadonlySigned:     uint8(len(readonlySigners)),
		NumReadonlyUnsigned:   uint8(len(readonlyOthers)),
	}
	self.RecentBlockhash = recentBlockhash

	self.AccountKeys = make([]common.PublicKey, 0, len(order))
	self.AccountKeys = append(self.AccountKeys, writableSigners...)
	self.AccountKeys = append(self.AccountKeys, readonlySigners...)
	self.AccountKeys = append(self.AccountKeys, writableOthers...)
	self.AccountKeys = append(self.AccountKeys, readonlyOthers...)

	index := make(map[common.PublicKey]uint8, len(self.AccountKeys))
	for i, key := range self.AccountKeys {
		index[key] = uint8(i)
	}

	self.Instructions = make([]CompiledInstruction, 0, len(instructions))
	for _, instruction := range instructions {
		compiled := CompiledInstruction{
			ProgramIDIndex: index[instruction.ProgramID],
			AccountIndexes: make([]uint8, 0, len(instruction.Accounts)),
			Data:           instruction.Data,
		}
		for _, account := range instruction.Accounts {
			compiled.AccountIndexes = append(compiled.AccountIndexes, index[account.PubKey])
		}
		self.Instructions = append(self.Instructions, compiled)
	}

	return
}

// Signers returns the identities that must sign for the message to be valid
func (self *Message) Signers() []common.PublicKey {
	return self.AccountKeys[:self.Header.NumRequiredSignatures]
}

func (self *Message) isWritable(idx uint8) bool {
	if idx < self.Header.NumRequiredSignatures {
		return idx < self.Header.NumRequiredSignatures-self.Header.NumReadonlySigned
	}
	return int(idx) < len(self.AccountKeys)-int(self.Header.NumReadonlyUnsigned)
}

// Decompile rebuilds the instruction list with per-account flags recovered
// from the header. Inverse of CompileMessage up to flag merging.
func (self *Message) Decompile() (out []types.Instruction, err error) {
	out = make([]types.Instruction, 0, len(self.Instructions))
	for _, compiled := range self.Instructions {
		if int(compiled.ProgramIDIndex) >= len(self.AccountKeys) {
			err = ErrAccountIndexOutOfRange
			return
		}
		instruction := types.Instruction{
			ProgramID: self.AccountKeys[compiled.ProgramIDIndex],
			Accounts:  make([]types.AccountMeta, 0, len(compiled.AccountIndexes)),
			Data:      compiled.Data,
		}
		for _, idx := range compiled.AccountIndexes {
			if int(idx) >= len(self.AccountKeys) {
				err = ErrAccountIndexOutOfRange
				return
			}
			instruction.Accounts = append(instruction.Accounts, types.AccountMeta{
				PubKey:     self.AccountKeys[idx],
				IsSigner:   idx < self.Header.NumRequiredSignatures,
				IsWritable: self.isWritable(idx),
			})
		}
		out = append(out, instruction)
	}
	return
}

func (self *Message) Serialize() []byte {
	out := new(bytes.Buffer)

	if self.Version == MessageVersionV0 {
		out.WriteByte(0x80)
	}

	out.WriteByte(self.Header.NumRequiredSignatures)
	out.WriteByte(self.Header.NumReadonlySigned)
	out.WriteByte(self.Header.NumReadonlyUnsigned)

	WriteCompactU16(out, len(self.AccountKeys))
	for _, key := range self.AccountKeys {
		out.Write(key.Bytes())
	}

	out.Write(self.RecentBlockhash[:])

	WriteCompactU16(out, len(self.Instructions))
	for _, instruction := range self.Instructions {
		out.WriteByte(instruction.ProgramIDIndex)
		WriteCompactU16(out, len(instruction.AccountIndexes))
		out.Write(instruction.AccountIndexes)
		WriteCompactU16(out, len(instruction.Data))
		out.Write(instruction.Data)
	}

	if self.Version == MessageVersionV0 {
		// No address lookup tables
		WriteCompactU16(out, 0)
	}

	return out.Bytes()
}

func DeserializeMessage(reader *bytes.Reader) (self Message, err error) {
	prefix, err := reader.ReadByte()
	if err != nil {
		return
	}
	if prefix&0x80 == 0 {
		self.Version = MessageVersionLegacy
		err = reader.UnreadByte()
		if err != nil {
			return
		}
	} else {
		if prefix&0x7f != 0 {
			err = ErrUnsupportedVersion
			return
		}
		self.Version = MessageVersionV0
	}

	header := make([]byte, 3)
	err = readFull(reader, header)
	if err != nil {
		return
	}
	self.Header = MessageHeader{
		NumRequiredSignatures: header[0],
		NumReadonlySigned:     header[1],
		NumReadonlyUnsigned:   header[2],
	}

	numKeys, err := ReadCompactU16(reader)
	if err != nil {
		return
	}
	self.AccountKeys = make([]common.PublicKey, numKeys)
	for i := 0; i < numKeys; i++ {
		buf := make([]byte, 32)
		err = readFull(reader, buf)
		if err != nil {
			return
		}
		self.AccountKeys[i] = common.PublicKeyFromBytes(buf)
	}

	err = readFull(reader, self.RecentBlockhash[:])
	if err != nil {
		return
	}

	numInstructions, err := ReadCompactU16(reader)
	if err != nil {
		return
	}
	self.Instructions = make([]CompiledInstruction, numInstructions)
	for i := 0; i < numInstructions; i++ {
		var instruction CompiledInstruction
		instruction.ProgramIDIndex, err = reader.ReadByte()
		if err != nil {
			return
		}

		var numIndexes int
		numIndexes, err = ReadCompactU16(reader)
		if err != nil {
			return
		}
		instruction.AccountIndexes = make([]uint8, numIndexes)
		err = readFull(reader, instruction.AccountIndexes)
		if err != nil {
			return
		}

		var dataLen int
		dataLen, err = ReadCompactU16(reader)
		if err != nil {
			return
		}
		instruction.Data = make([]byte, dataLen)
		err = readFull(reader, instruction.Data)
		if err != nil {
			return
		}

		self.Instructions[i] = instruction
	}

	if self.Version == MessageVersionV0 {
		var numTables int
		numTables, err = ReadCompactU16(reader)
		if err != nil {
			return
		}
		if numTables != 0 {
			err = ErrAddressTablesNotAllowed
			return
		}
	}

	return
}

func readFull(reader *bytes.Reader, buf []byte) error {
	n, err := io.ReadFull(reader, buf)
	if err != nil || n < len(buf) {
		return ErrUnexpectedEndOfMessage
	}
	return nil
}
