package bacnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterVendorThenLookup(t *testing.T) {
	err := RegisterVendor(9999, map[uint32]ObjectClassInfo{
		5: {PropertyTypes: map[string]string{"presentValue": "Real"}},
	})
	require.NoError(t, err)

	info, ok := LookupVendor(9999)
	require.True(t, ok)
	require.Equal(t, uint32(9999), info.VendorIdentifier)

	class, ok := info.GetObjectClass(5)
	require.True(t, ok)
	propType, ok := class.GetPropertyType("presentValue")
	require.True(t, ok)
	require.Equal(t, "Real", propType)
}

func TestLookupVendorFallsBackToASHRAE(t *testing.T) {
	info, ok := LookupVendor(1234567)
	require.True(t, ok)
	require.Equal(t, uint32(0), info.VendorIdentifier)
}

func TestRegisterVendorRejectedAfterFreeze(t *testing.T) {
	_, _ = LookupVendor(0) // ensures the registry is frozen regardless of test order
	err := RegisterVendor(424242, nil)
	require.Error(t, err)
	var rte *RuntimeError
	require.ErrorAs(t, err, &rte)
}

func TestGlobalVendorRegistryDelegatesToPackageFunctions(t *testing.T) {
	info, ok := GlobalVendorRegistry.LookupVendor(0)
	require.True(t, ok)
	require.Equal(t, uint32(0), info.VendorIdentifier)
}
