package address

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var book = []string{
	"221B Baker Street, London",
	"10 Downing Street, London",
	"1600 Amphitheatre Parkway, Mountain View, CA",
	"1 Infinite Loop, Cupertino, CA",
}

func TestSuggestBeforeReady(t *testing.T) {
	c := NewCapability()
	assert.False(t, c.IsReady())
	assert.Empty(t, slices.Collect(c.Suggest(context.Background(), "baker")))
}

func TestSuggestAfterProvide(t *testing.T) {
	c := NewCapability()
	c.Provide(NewStaticProvider(book, 0))

	assert.True(t, c.IsReady())
	assert.Equal(t,
		[]string{"221B Baker Street, London", "10 Downing Street, London"},
		slices.Collect(c.Suggest(context.Background(), "street lon")),
	)
	assert.Empty(t, slices.Collect(c.Suggest(context.Background(), "   ")))
}

func TestSuggestIsSingleUse(t *testing.T) {
	c := NewCapability()
	c.Provide(NewStaticProvider(book, 0))

	seq := c.Suggest(context.Background(), "ca")
	first := slices.Collect(seq)
	assert.Len(t, first, 2)
	assert.Empty(t, slices.Collect(seq))
}

func TestProvideOnlyOnce(t *testing.T) {
	c := NewCapability()
	c.Provide(NewStaticProvider(book, 1))
	c.Provide(NewStaticProvider(nil, 0))

	assert.Equal(t, []string{"221B Baker Street, London"}, slices.Collect(c.Suggest(context.Background(), "london")))
}

func TestProvideNilIgnored(t *testing.T) {
	c := NewCapability()
	c.Provide(nil)

	assert.False(t, c.IsReady())
	assert.NotPanics(t, func() {
		assert.Empty(t, slices.Collect(c.Suggest(context.Background(), "baker")))
	})

	c.Provide(NewStaticProvider(book, 0))
	assert.True(t, c.IsReady())
	assert.Len(t, slices.Collect(c.Suggest(context.Background(), "baker")), 1)
}

func TestWait(t *testing.T) {
	c := NewCapability()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.True(t, errors.Is(c.Wait(ctx), context.DeadlineExceeded))

	go c.Provide(NewStaticProvider(book, 0))
	require.NoError(t, c.Wait(context.Background()))
	<-c.Ready()
}

type failingProvider struct{}

func (failingProvider) Predict(context.Context, string) ([]string, error) {
	return nil, errors.New("quota exceeded")
}

func TestSuggestProviderError(t *testing.T) {
	c := NewCapability()
	c.Provide(failingProvider{})
	assert.Empty(t, slices.Collect(c.Suggest(context.Background(), "anything")))
}

func TestLoadAddressBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addresses.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addresses:\n  - 1 Main St\n  - 2 Side Rd\n"), 0o644))

	got, err := LoadAddressBook(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1 Main St", "2 Side Rd"}, got)

	_, err = LoadAddressBook(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
