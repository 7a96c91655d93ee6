package royalty

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/nftixorg/libnftix-go/account"
)

const (
	tableHeaderSize = 4 // num_entries(4)
	entryLenSize    = 2 // account id length(2)
	entryShareSize  = 4 // share bp(4)
)

// SerializeTable encodes a table to binary form for embedding in
// contract state records. Entries are sorted by beneficiary so the
// encoding is deterministic.
func SerializeTable(t Table) ([]byte, error) {
	beneficiaries := make([]account.ID, 0, len(t))
	size := tableHeaderSize
	for beneficiary := range t {
		if len(beneficiary) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: beneficiary id %d bytes", ErrInvalidTableData, len(beneficiary))
		}
		beneficiaries = append(beneficiaries, beneficiary)
		size += entryLenSize + len(beneficiary) + entryShareSize
	}
	sort.Slice(beneficiaries, func(i, j int) bool { return beneficiaries[i] < beneficiaries[j] })

	buf := make([]byte, size)
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(beneficiaries)))
	offset := tableHeaderSize
	for _, beneficiary := range beneficiaries {
		binary.BigEndian.PutUint16(buf[offset:offset+2], uint16(len(beneficiary)))
		offset += 2
		copy(buf[offset:], beneficiary)
		offset += len(beneficiary)
		binary.BigEndian.PutUint32(buf[offset:offset+4], t[beneficiary])
		offset += 4
	}
	return buf, nil
}

// DeserializeTable decodes binary data into a validated Table.
func DeserializeTable(data []byte) (Table, error) {
	if len(data) < tableHeaderSize {
		return nil, fmt.Errorf("%w: too short (%d bytes)", ErrInvalidTableData, len(data))
	}
	numEntries := int(binary.BigEndian.Uint32(data[0:4]))
	offset := tableHeaderSize

	shares := make(map[account.ID]uint32, numEntries)
	for i := 0; i < numEntries; i++ {
		if len(data) < offset+entryLenSize {
			return nil, fmt.Errorf("%w: truncated entry %d", ErrInvalidTableData, i)
		}
		idLen := int(binary.BigEndian.Uint16(data[offset : offset+2]))
		offset += 2
		if len(data) < offset+idLen+entryShareSize {
			return nil, fmt.Errorf("%w: truncated entry %d", ErrInvalidTableData, i)
		}
		beneficiary := account.ID(data[offset : offset+idLen])
		offset += idLen
		shares[beneficiary] = binary.BigEndian.Uint32(data[offset : offset+4])
		offset += 4
	}
	if offset != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidTableData, len(data)-offset)
	}
	return NewTable(shares)
}
