package profile

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel)
	return logger
}

func TestSessionPersistMatchesDisk(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save("alice", "hash1", 500))

	rec, err := store.Load("alice")
	require.NoError(t, err)

	session := NewSession(rec, store, testLogger())
	session.Apply(-50)
	require.NoError(t, session.Persist())

	reloaded, err := store.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, session.Balance, reloaded.Balance)
	assert.Equal(t, 450, reloaded.Balance)
}

func TestSessionPersistRetriesOnce(t *testing.T) {
	saver := &failingSaver{failures: 1}
	session := NewSession(&Record{Username: "alice", Balance: 500}, saver, testLogger())

	require.NoError(t, session.Persist())
	assert.Equal(t, 2, saver.calls)
}

func TestSessionPersistReportsDoubleFailure(t *testing.T) {
	saver := &failingSaver{failures: 2}
	session := NewSession(&Record{Username: "alice", Balance: 500}, saver, testLogger())

	assert.Error(t, session.Persist())
	assert.Equal(t, 2, saver.calls)
}

func TestSessionApply(t *testing.T) {
	session := NewSession(&Record{Username: "alice", Balance: 500}, &failingSaver{}, testLogger())

	session.Apply(50)
	assert.Equal(t, 550, session.Balance)
	session.Apply(-100)
	assert.Equal(t, 450, session.Balance)
}
