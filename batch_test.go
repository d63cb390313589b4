package abidecode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBatchDecodeReturnsResultsInOrder(t *testing.T) {
	one := []Token{Uint{Value: bigFixture(1)}}
	two := []Token{Uint{Value: bigFixture(2)}, Address{Value: addressFixture(0x71)}}
	inputs := []string{encodeTopLevel(one), encodeTopLevel(two)}

	results, err := BatchDecode(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, one, results[0])
	require.Equal(t, two, results[1])
}

func TestBatchDecodePropagatesFirstError(t *testing.T) {
	good := encodeTopLevel([]Token{Uint{Value: bigFixture(3)}})
	starved := encodeTopLevel([]Token{Uint{Value: bigFixture(4)}, Uint{Value: bigFixture(5)}})

	// A one-word input spends two units (one synthesis, one leaf); the
	// two-word input needs three, so a budget of 2 starves only that one.
	_, err := BatchDecode(context.Background(), []string{good, starved}, WithStepBudget(2))
	require.ErrorIs(t, err, ErrBudgetExhausted)
}
