package nats

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
)

func TestStart_CoreOnly(t *testing.T) {
	t.Parallel()

	rt, err := Start("")
	require.NoError(t, err)
	defer func() { require.NoError(t, rt.Close()) }()

	require.Nil(t, rt.JS, "no data dir means no jetstream")
	require.True(t, rt.Conn.IsConnected())

	_, err = rt.PreferenceBucket(context.Background())
	require.Error(t, err)

	got := make(chan string, 1)
	sub, err := rt.Conn.Subscribe(SubjectForScope("docs"), func(msg *nats.Msg) {
		got <- msg.Subject
	})
	require.NoError(t, err)
	defer func() { _ = sub.Unsubscribe() }()

	require.NoError(t, rt.Conn.Publish(SubjectForEvent("docs", "theme.changed"), []byte("{}")))

	select {
	case subject := <-got:
		require.Equal(t, "themeswitch.docs.theme.changed", subject)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestStart_PreferenceBucket(t *testing.T) {
	t.Parallel()

	rt, err := Start(t.TempDir())
	require.NoError(t, err)
	defer func() { require.NoError(t, rt.Close()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	kv, err := rt.PreferenceBucket(ctx)
	require.NoError(t, err)
	require.Equal(t, PreferenceBucket, kv.Bucket())

	_, err = kv.PutString(ctx, "theme-preference", "dark")
	require.NoError(t, err)

	// Setting the bucket up again must not wipe it.
	kv, err = rt.PreferenceBucket(ctx)
	require.NoError(t, err)

	entry, err := kv.Get(ctx, "theme-preference")
	require.NoError(t, err)
	require.Equal(t, "dark", string(entry.Value()))
}

func TestStart_SecondProcessJoinsPrimary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	primary, err := Start(dir)
	require.NoError(t, err)
	require.True(t, primary.Primary)
	require.NotNil(t, primary.Server)
	require.FileExists(t, filepath.Join(dir, portFile))

	node, err := Start(dir)
	require.NoError(t, err)
	require.False(t, node.Primary)
	require.Nil(t, node.Server)

	got := make(chan string, 1)
	sub, err := primary.Conn.Subscribe(SubjectForScope("docs"), func(msg *nats.Msg) {
		got <- string(msg.Data)
	})
	require.NoError(t, err)
	require.NoError(t, primary.Conn.Flush())

	require.NoError(t, node.Conn.Publish(SubjectForEvent("docs", "dialog.open"), []byte("hello")))
	require.NoError(t, node.Conn.Flush())

	select {
	case data := <-got:
		require.Equal(t, "hello", data)
	case <-time.After(2 * time.Second):
		t.Fatal("message from the second connection never arrived")
	}
	_ = sub.Unsubscribe()

	// The node shares the primary's JetStream.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	kv, err := node.PreferenceBucket(ctx)
	require.NoError(t, err)
	_, err = kv.PutString(ctx, "theme-preference", "light")
	require.NoError(t, err)

	require.NoError(t, node.Close())
	require.FileExists(t, filepath.Join(dir, portFile), "a node leaves the port file alone")
	require.NoError(t, primary.Close())
	require.NoFileExists(t, filepath.Join(dir, portFile))
}

func TestStart_StalePortFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, portFile), []byte("not-a-port"), 0644))

	rt, err := Start(dir)
	require.NoError(t, err)
	defer func() { require.NoError(t, rt.Close()) }()
	require.True(t, rt.Primary)
}

func TestSubjects(t *testing.T) {
	t.Parallel()

	require.Equal(t, "themeswitch.default.>", SubjectForScope("default"))
	require.Equal(t, "themeswitch.default.dialog.open", SubjectForEvent("default", "dialog.open"))
}
