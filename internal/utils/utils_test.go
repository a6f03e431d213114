package utils_test

import (
	"testing"

	"github.com/jrsteele09/codelearn-landing/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestToStringSlice(t *testing.T) {
	require.Equal(t, []string{"a", "c"}, utils.ToStringSlice([]any{"a", 1, "c"}))
	require.Equal(t, []string{"x", "y"}, utils.ToStringSlice([]string{"x", "y"}))
	require.Equal(t, []string{"learners", "beta"}, utils.ToStringSlice(" learners  beta "))
	require.Empty(t, utils.ToStringSlice(nil))
	require.Empty(t, utils.ToStringSlice(42))
}

func TestPointers(t *testing.T) {
	require.Equal(t, "", utils.Value[string](nil))
	require.Equal(t, 7, utils.Value(utils.Ptr(7)))
}
