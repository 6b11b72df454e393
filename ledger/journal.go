package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

var (
	ErrEmptyJournal    = errors.New("journal is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidBlock    = errors.New("invalid block")
)

// genesisPrevHash is the previous hash of the first block.
const genesisPrevHash = "0"

type Journal struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// NewJournal creates a journal whose genesis block holds the opening balance.
func NewJournal(openingBalance int) *Journal {
	j := &Journal{now: time.Now}
	genesis := Block{
		Index:     0,
		Timestamp: j.now().Unix(),
		PrevHash:  genesisPrevHash,
		Entry:     Entry{Outcome: blackjack.OutcomeNone, Balance: openingBalance},
	}
	genesis.Hash = calculateHash(genesis)
	j.blocks = append(j.blocks, genesis)
	return j
}

// Append links e after the latest block. The entry's balance must equal the
// previous balance plus its delta.
func (j *Journal) Append(e Entry) (Block, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	latest := j.blocks[len(j.blocks)-1]
	b := Block{
		Index:     latest.Index + 1,
		Timestamp: j.now().Unix(),
		PrevHash:  latest.Hash,
		Entry:     e,
	}
	b.Entry.PlayerCards = slices.Clone(e.PlayerCards)
	b.Entry.DealerCards = slices.Clone(e.DealerCards)
	b.Hash = calculateHash(b)

	if err := validateBlock(b, latest); err != nil {
		return Block{}, err
	}
	j.blocks = append(j.blocks, b)
	return b, nil
}

// Record appends the entry of a settled round.
func (j *Journal) Record(r *blackjack.Round, s blackjack.Settlement, balance int) (Block, error) {
	return j.Append(NewEntry(r, s, balance))
}

// GetLatest returns the most recently added block.
func (j *Journal) GetLatest() (Block, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.blocks) == 0 {
		return Block{}, ErrEmptyJournal
	}
	return j.blocks[len(j.blocks)-1], nil
}

func (j *Journal) GetByIndex(index int) (Block, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if index < 0 || index >= len(j.blocks) {
		return Block{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return j.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.blocks)
}

// Entries returns the recorded rounds in order, without the genesis block.
func (j *Journal) Entries() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]Entry, 0, max(len(j.blocks)-1, 0))
	for _, b := range j.blocks[min(1, len(j.blocks)):] {
		out = append(out, b.Entry)
	}
	return out
}

// Verify re-checks the genesis block and every link of the chain.
func (j *Journal) Verify() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.blocks) == 0 {
		return ErrEmptyJournal
	}
	genesis := j.blocks[0]
	if genesis.PrevHash != genesisPrevHash || genesis.Index != 0 {
		return fmt.Errorf("%w: genesis", ErrInvalidBlock)
	}
	if genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("%w: genesis hash", ErrInvalidBlock)
	}
	for i := 1; i < len(j.blocks); i++ {
		if err := validateBlock(j.blocks[i], j.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

// validateBlock checks index continuity, hash linkage, the block's own hash
// and that the balance carries over from the previous block.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("%w: expected index %d, got %d", ErrInvalidBlock, previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("%w: prev hash %s does not match %s", ErrInvalidBlock, current.PrevHash, previous.Hash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("%w: expected hash %s, got %s", ErrInvalidBlock, expected, current.Hash)
	}
	if want := previous.Entry.Balance + current.Entry.Delta; current.Entry.Balance != want {
		return fmt.Errorf("%w: balance %d after delta %d, expected %d",
			ErrInvalidBlock, current.Entry.Balance, current.Entry.Delta, want)
	}
	if current.Entry.Balance < 0 {
		return fmt.Errorf("%w: negative balance %d", ErrInvalidBlock, current.Entry.Balance)
	}
	return nil
}

// calculateHash is the SHA-256 of the index, timestamp, previous hash and the
// JSON encoded entry.
func calculateHash(b Block) string {
	entry, _ := json.Marshal(b.Entry)
	data := fmt.Sprintf("%d%d%s%s", b.Index, b.Timestamp, b.PrevHash, entry)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
