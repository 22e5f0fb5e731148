package store

import (
	"fmt"
	"testing"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openSmall opens an in-memory store whose transactions hold only a few
// thousand entries.
func openSmall(t *testing.T) *Store {
	t.Helper()
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithMemTableSize(1 << 20).
		WithValueThreshold(1 << 10)
	s, err := open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func sequence(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}

	return out
}

func TestReplace_TooBigForOneTxn(t *testing.T) {
	s := openSmall(t)
	big := sequence("v", 20000)

	// the record does not fit in a single transaction
	err := s.db.Update(func(txn *badger.Txn) error {
		for i, id := range big {
			if err := txn.Set([]byte(fmt.Sprintf("k%d", i)), []byte(id)); err != nil {
				return err
			}
		}
		return nil
	})
	require.ErrorIs(t, err, badger.ErrTxnTooBig)

	require.NoError(t, s.WriteSequence("walk", sequence("old", 25000)))
	require.NoError(t, s.WriteSequence("walk", big))

	got, err := s.ReadSequence("walk")
	require.NoError(t, err)
	assert.Equal(t, big, got)
}

func TestReplace_SmallRecordIsOneTxn(t *testing.T) {
	s := openSmall(t)
	require.NoError(t, s.WriteSequence("walk", sequence("a", 10)))
	require.NoError(t, s.WriteSequence("walk", sequence("b", 3)))

	got, err := s.ReadSequence("walk")
	require.NoError(t, err)
	assert.Equal(t, []string{"b0", "b1", "b2"}, got)
}
