// Package metering defines the boundary to the storage metering
// collaborator: the external machinery that charges deposits for
// records the ledger grows and refunds deposits for records it
// releases. The ledger core only reports byte figures; it never moves
// funds itself.
package metering

import (
	"sort"
	"sync"

	"github.com/nftixorg/libnftix-go/account"
)

const (
	// entryLenPrefix is the serialized length prefix of an account id.
	entryLenPrefix = 4
	// approvalIDSize is the serialized size of an approval id.
	approvalIDSize = 8
)

// BytesForApproval returns the storage footprint of a single approval
// entry: the account id bytes plus its length prefix and the id.
func BytesForApproval(delegate account.ID) uint64 {
	return uint64(len(delegate)) + entryLenPrefix + approvalIDSize
}

// Release reports approval entries freed by a transfer or revocation.
// The refund for the released bytes goes to the account that paid the
// deposit: the owner at the time the approvals were granted.
type Release struct {
	Owner     account.ID
	Delegates []account.ID
	Bytes     uint64
}

// ReleaseFor builds a Release from a prior approval set. Delegates are
// sorted so reports are deterministic.
func ReleaseFor(owner account.ID, approvals map[account.ID]uint64) Release {
	r := Release{Owner: owner, Delegates: make([]account.ID, 0, len(approvals))}
	for delegate := range approvals {
		r.Delegates = append(r.Delegates, delegate)
		r.Bytes += BytesForApproval(delegate)
	}
	sort.Slice(r.Delegates, func(i, j int) bool { return r.Delegates[i] < r.Delegates[j] })
	return r
}

// Meter receives storage-release reports.
type Meter interface {
	// RefundReleased is called after a mutation that freed approval
	// storage, with the full release report.
	RefundReleased(r Release)
}

// NopMeter discards all reports.
type NopMeter struct{}

// RefundReleased implements Meter.
func (NopMeter) RefundReleased(Release) {}

// RecordingMeter captures reports for inspection in tests.
type RecordingMeter struct {
	mu       sync.Mutex
	Releases []Release
}

// RefundReleased implements Meter.
func (m *RecordingMeter) RefundReleased(r Release) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Releases = append(m.Releases, r)
}
