package crawl_test

import (
	"testing"

	"github.com/avolos/flatscan/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_DeduplicatesPreservingOrder(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.001)

	assert.True(t, f.Push("https://rieltor.ua/flats-rent/view/1/"))
	assert.True(t, f.Push("https://rieltor.ua/flats-rent/view/2/"))
	assert.False(t, f.Push("https://rieltor.ua/flats-rent/view/1/"))
	assert.True(t, f.Push("https://rieltor.ua/flats-rent/view/3/"))

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []string{
		"https://rieltor.ua/flats-rent/view/1/",
		"https://rieltor.ua/flats-rent/view/2/",
		"https://rieltor.ua/flats-rent/view/3/",
	}, f.Drain())
	assert.Zero(t, f.Len())
}

func TestFrontier_SeenSurvivesDrain(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.001)
	f.Push("https://rieltor.ua/flats-rent/view/1/")
	f.Drain()

	assert.True(t, f.Seen("https://rieltor.ua/flats-rent/view/1/"))
	assert.False(t, f.Push("https://rieltor.ua/flats-rent/view/1/"))
}
