package blockstore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SlotDB/record"
	"SlotDB/trace"
	"SlotDB/types"
)

func employee(ssn, name string) record.Record {
	return record.EmployeeLayout.New(map[string]string{
		record.FieldSSN:  ssn,
		record.FieldName: name,
	})
}

func newStore(t *testing.T, opts Options) *Store {
	t.Helper()
	s, err := New(record.EmployeeLayout, opts)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore(t *testing.T) {
	s := newStore(t, Options{})
	assert.Equal(t, types.DefaultBlockSize, s.BlockSize())
	assert.Equal(t, 512/115, s.SlotsPerBlock())
	assert.Equal(t, 0, s.BlockCount())

	_, err := New(record.EmployeeLayout, Options{BlockSize: 100})
	assert.ErrorIs(t, err, ErrBlockTooSmall)
}

func TestAllocateBlock(t *testing.T) {
	s := newStore(t, Options{})
	for want := uint32(0); want < 3; want++ {
		assert.Equal(t, want, s.AllocateBlock())
	}
	assert.Equal(t, 3, s.BlockCount())
}

func TestInsertReadRoundTrip(t *testing.T) {
	s := newStore(t, Options{})
	rec := employee("111223333", "Alice")

	addr, err := s.InsertRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, types.Address{BlockID: 0, SlotIndex: 0}, addr)

	got, ok, err := s.Read(addr)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, rec.Equal(got))
}

// Scenario D: a freed slot is reused by the next insert.
func TestDeletedSlotIsReused(t *testing.T) {
	s := newStore(t, Options{})

	addr, err := s.InsertRecord(employee("1", "first"))
	require.NoError(t, err)
	require.Equal(t, types.Address{}, addr)

	require.NoError(t, s.Delete(addr))
	_, ok, err := s.Read(addr)
	require.NoError(t, err)
	assert.False(t, ok)

	again, err := s.InsertRecord(employee("2", "second"))
	require.NoError(t, err)
	assert.Equal(t, types.Address{}, again)

	got, ok, err := s.Read(again)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2", record.EmployeeLayout.Get(got, record.FieldSSN))
}

// Scenario E: N+1 inserts allocate exactly two blocks.
func TestBlockGrowth(t *testing.T) {
	s := newStore(t, Options{})
	n := s.SlotsPerBlock()

	var last types.Address
	for i := 0; i <= n; i++ {
		addr, err := s.InsertRecord(employee(fmt.Sprint(i), "x"))
		require.NoError(t, err)
		last = addr
	}

	assert.Equal(t, 2, s.BlockCount())
	assert.Equal(t, types.Address{BlockID: 1, SlotIndex: 0}, last)

	blocks := s.Blocks()
	assert.Equal(t, n, blocks[0].Used)
	assert.Equal(t, 1, blocks[1].Used)
	assert.Equal(t, []bool{true, false, false, false}[:n], blocks[1].Slots)
}

func TestFirstFitAcrossBlocks(t *testing.T) {
	s := newStore(t, Options{})
	n := s.SlotsPerBlock()
	addrs := make([]types.Address, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		addr, err := s.InsertRecord(employee(fmt.Sprint(i), "x"))
		require.NoError(t, err)
		addrs = append(addrs, addr)
	}

	// free one slot in each block; the earlier block wins
	require.NoError(t, s.Delete(addrs[n+1]))
	require.NoError(t, s.Delete(addrs[2]))

	addr, err := s.InsertRecord(employee("a", "x"))
	require.NoError(t, err)
	assert.Equal(t, addrs[2], addr)

	addr, err = s.InsertRecord(employee("b", "x"))
	require.NoError(t, err)
	assert.Equal(t, addrs[n+1], addr)

	assert.Equal(t, 2, s.BlockCount())
}

func TestReadOutOfRange(t *testing.T) {
	s := newStore(t, Options{})
	_, err := s.InsertRecord(employee("1", "x"))
	require.NoError(t, err)

	_, ok, err := s.Read(types.Address{BlockID: 7})
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Read(types.Address{BlockID: 0, SlotIndex: uint16(s.SlotsPerBlock())})
	assert.ErrorIs(t, err, ErrAddressOutOfRange)
	assert.False(t, ok)

	_, ok, err = s.Read(types.Address{BlockID: 0, SlotIndex: 1})
	assert.NoError(t, err)
	assert.False(t, ok, "empty slot")
}

func TestDeleteOutOfRange(t *testing.T) {
	s := newStore(t, Options{})
	assert.ErrorIs(t, s.Delete(types.Address{BlockID: 0}), ErrAddressOutOfRange)

	s.AllocateBlock()
	assert.NoError(t, s.Delete(types.Address{BlockID: 0}), "empty slot delete is a no-op")
	assert.ErrorIs(t, s.Delete(types.Address{BlockID: 0, SlotIndex: 99}), ErrAddressOutOfRange)
}

func TestFindByKey(t *testing.T) {
	s := newStore(t, Options{})
	var want types.Address
	for i := 0; i < 10; i++ {
		addr, err := s.InsertRecord(employee(fmt.Sprintf("%09d", i), "x"))
		require.NoError(t, err)
		if i == 7 {
			want = addr
		}
	}
	key := FieldKey(record.EmployeeLayout, record.FieldSSN)

	addr, ok, err := s.FindByKey("000000007", key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, addr)

	require.NoError(t, s.Delete(want))
	_, ok, err = s.FindByKey("000000007", key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScanOrderAndStats(t *testing.T) {
	s := newStore(t, Options{})
	for i := 0; i < 6; i++ {
		_, err := s.InsertRecord(employee(fmt.Sprint(i), "x"))
		require.NoError(t, err)
	}
	require.NoError(t, s.Delete(types.Address{BlockID: 0, SlotIndex: 1}))

	var seen []string
	require.NoError(t, s.Scan(func(_ types.Address, r record.Record) error {
		seen = append(seen, record.EmployeeLayout.Get(r, record.FieldSSN))
		return nil
	}))
	assert.Equal(t, []string{"0", "2", "3", "4", "5"}, seen)

	st := s.Stats()
	assert.Equal(t, 2, st.Blocks)
	assert.Equal(t, 8, st.TotalSlots)
	assert.Equal(t, 5, st.UsedSlots)
	assert.Equal(t, 5*115, st.RecordBytes)
	assert.Equal(t, 2*512, st.BlockBytes)
}

func TestScanStopsOnError(t *testing.T) {
	s := newStore(t, Options{})
	for i := 0; i < 3; i++ {
		_, err := s.InsertRecord(employee(fmt.Sprint(i), "x"))
		require.NoError(t, err)
	}
	boom := fmt.Errorf("boom")
	calls := 0
	err := s.Scan(func(types.Address, record.Record) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestCachedReadsStayConsistent(t *testing.T) {
	s := newStore(t, Options{CacheSize: 16})

	addr, err := s.InsertRecord(employee("1", "cached"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, ok, err := s.Read(addr)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "cached", record.EmployeeLayout.Get(got, record.FieldName))
		s.cache.wait()
	}

	require.NoError(t, s.Delete(addr))
	_, ok, err := s.Read(addr)
	require.NoError(t, err)
	assert.False(t, ok)

	again, err := s.InsertRecord(employee("2", "replacement"))
	require.NoError(t, err)
	require.Equal(t, addr, again)
	s.cache.wait()

	got, ok, err := s.Read(again)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "replacement", record.EmployeeLayout.Get(got, record.FieldName))
}

func TestCachedReadReturnsCopy(t *testing.T) {
	s := newStore(t, Options{CacheSize: 16})
	addr, err := s.InsertRecord(employee("1", "orig"))
	require.NoError(t, err)

	got, _, err := s.Read(addr)
	require.NoError(t, err)
	s.cache.wait()
	got.Values[0] = "mutated"

	again, _, err := s.Read(addr)
	require.NoError(t, err)
	assert.Equal(t, "orig", record.EmployeeLayout.Get(again, record.FieldName))
}

func TestStoreTraces(t *testing.T) {
	rec := &trace.Recorder{}
	s := newStore(t, Options{Tracer: rec})

	addr, err := s.InsertRecord(employee("1", "x"))
	require.NoError(t, err)
	require.NoError(t, s.Delete(addr))

	assert.Equal(t, []trace.Kind{trace.BlockAllocated, trace.RecordInserted, trace.RecordDeleted}, rec.Kinds())
}
