package semantics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"myjsc/internal/semantics"
)

func TestCoerce(t *testing.T) {
	unified, ok := semantics.Coerce("int", "float")
	require.True(t, ok)
	require.Equal(t, "float", unified)

	unified, ok = semantics.Coerce("int", "int")
	require.True(t, ok)
	require.Equal(t, "int", unified)

	_, ok = semantics.Coerce("int", "boolean")
	require.False(t, ok)
}

func TestSum(t *testing.T) {
	result, ok := semantics.Sum("int", "float")
	require.True(t, ok)
	require.Equal(t, "float", result)

	_, ok = semantics.Sum("string", "int")
	require.False(t, ok)
}

func TestLess(t *testing.T) {
	result, ok := semantics.Less("int", "float")
	require.True(t, ok)
	require.Equal(t, "boolean", result)

	_, ok = semantics.Less("boolean", "int")
	require.False(t, ok)
}

func TestAnd(t *testing.T) {
	result, ok := semantics.And("boolean", "boolean")
	require.True(t, ok)
	require.Equal(t, "boolean", result)

	_, ok = semantics.And("boolean", "int")
	require.False(t, ok)
}

func TestAssignableTo(t *testing.T) {
	require.True(t, semantics.AssignableTo("float", "int"))
	require.True(t, semantics.AssignableTo("int", "int"))
	require.False(t, semantics.AssignableTo("int", "float"))
	require.False(t, semantics.AssignableTo("string", "int"))
}

func TestSignatureRoundTrip(t *testing.T) {
	sig := semantics.EncodeSignature([]string{"int", "string"}, "boolean")
	params, ret := semantics.DecodeSignature(sig)
	require.Equal(t, []string{"int", "string"}, params)
	require.Equal(t, "boolean", ret)
	require.Equal(t, "int,string -> boolean", semantics.SignatureDisplay(sig))
}

func TestSignatureVoidArgs(t *testing.T) {
	sig := semantics.EncodeSignature(nil, "int")
	params, ret := semantics.DecodeSignature(sig)
	require.Nil(t, params)
	require.Equal(t, "int", ret)
	require.Equal(t, "void -> int", semantics.SignatureDisplay(sig))
}
