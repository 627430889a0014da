package gemini_test

import (
	"testing"

	"github.com/scoopnews/newsdesk/internal/gemini"
	"github.com/stretchr/testify/require"
)

func TestFirstJSONArrayBare(t *testing.T) {
	span, err := gemini.FirstJSONArray(`[{"id": 0}]`)
	require.NoError(t, err)
	require.Equal(t, `[{"id": 0}]`, span)
}

func TestFirstJSONArraySurroundedByProse(t *testing.T) {
	span, err := gemini.FirstJSONArray("Here are the translations:\n[{\"id\": 0}]\nLet me know if you need more.")
	require.NoError(t, err)
	require.Equal(t, `[{"id": 0}]`, span)
}

func TestFirstJSONArrayInsideCodeFence(t *testing.T) {
	span, err := gemini.FirstJSONArray("```json\n[{\"id\": 1, \"headline\": \"Titular\"}]\n```")
	require.NoError(t, err)
	require.Equal(t, `[{"id": 1, "headline": "Titular"}]`, span)
}

func TestFirstJSONArrayMissing(t *testing.T) {
	_, err := gemini.FirstJSONArray("I could not produce any output.")
	require.ErrorIs(t, err, gemini.ErrNoJSONArray)
}

func TestUnmarshalFirstArray(t *testing.T) {
	var items []struct {
		ID       int    `json:"id"`
		Headline string `json:"headline"`
	}
	err := gemini.UnmarshalFirstArray("Sure.\n```json\n[{\"id\": 0, \"headline\": \"Hola\"}]\n```", &items)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Hola", items[0].Headline)
}

func TestUnmarshalFirstArrayMalformedFailsClosed(t *testing.T) {
	var items []struct{}
	err := gemini.UnmarshalFirstArray(`[{"id": 0,]`, &items)
	require.ErrorIs(t, err, gemini.ErrNoJSONArray)
}
