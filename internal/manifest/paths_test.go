package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPathFromVersionless(t *testing.T) {
	got, err := StackPathFromVersionless("/dd/facility/etc/packages.xml")
	require.NoError(t, err)
	assert.Equal(t, "/dd/facility/etc/bak/packages.xml/packages.xml_swinstall_stack", got)

	_, err = StackPathFromVersionless("/")
	require.Error(t, err)
}

func TestVersionedFromStack(t *testing.T) {
	got, err := VersionedFromStack("/dd/facility/etc/bak/packages.xml/packages.xml_swinstall_stack", "0002")
	require.NoError(t, err)
	assert.Equal(t, "/dd/facility/etc/bak/packages.xml/packages.xml_0002", got)

	_, err = VersionedFromStack("/dd/facility/etc/bak/packages.xml/packages.xml_swinstall_stack", "")
	require.Error(t, err)
}

func TestVersionlessFromStack(t *testing.T) {
	got, err := VersionlessFromStack("/dd/facility/etc/bak/packages.xml/packages.xml_swinstall_stack")
	require.NoError(t, err)
	assert.Equal(t, "/dd/facility/etc/packages.xml", got)

	for _, bad := range []string{
		"/dd/facility/etc/packages.xml",
		"/dd/facility/etc/other/packages.xml/packages.xml_swinstall_stack",
	} {
		_, err := VersionlessFromStack(bad)
		require.Error(t, err, bad)
	}
}

func TestPathMappingsRoundTrip(t *testing.T) {
	file := "/show/config/tools.yaml"
	stack, err := StackPathFromVersionless(file)
	require.NoError(t, err)
	back, err := VersionlessFromStack(stack)
	require.NoError(t, err)
	assert.Equal(t, file, back)
}
