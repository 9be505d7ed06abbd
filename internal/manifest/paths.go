package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/swinst/internal/messages"
)

const (
	backupDirName = "bak"
	stackSuffix   = "_swinstall_stack"
)

// StackPathFromVersionless maps an installed file to its swinstall_stack:
// /dd/etc/packages.xml -> /dd/etc/bak/packages.xml/packages.xml_swinstall_stack
func StackPathFromVersionless(file string) (string, error) {
	dir, name, err := splitName(file)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, backupDirName, name, name+stackSuffix), nil
}

// VersionedFromStack maps a swinstall_stack path and a version to the versioned file:
// /dd/etc/bak/packages.xml/packages.xml_swinstall_stack + 4 -> /dd/etc/bak/packages.xml/packages.xml_4
func VersionedFromStack(stackPath string, version string) (string, error) {
	if version == "" {
		return "", errors.New(messages.PathEmptyVersion)
	}
	dir := filepath.Dir(filepath.Clean(stackPath))
	_, name, err := splitName(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+"_"+version), nil
}

// VersionlessFromStack maps a swinstall_stack path back to the installed file:
// /dd/etc/bak/packages.xml/packages.xml_swinstall_stack -> /dd/etc/packages.xml
func VersionlessFromStack(stackPath string) (string, error) {
	clean := filepath.Clean(stackPath)
	if !strings.HasSuffix(filepath.Base(clean), stackSuffix) {
		return "", fmt.Errorf(messages.PathNotStackFmt, stackPath)
	}
	nameDir := filepath.Dir(clean)
	bakDir, name, err := splitName(nameDir)
	if err != nil {
		return "", err
	}
	if filepath.Base(bakDir) != backupDirName {
		return "", fmt.Errorf(messages.PathNotStackFmt, stackPath)
	}
	return filepath.Join(filepath.Dir(bakDir), name), nil
}

func splitName(p string) (string, string, error) {
	clean := filepath.Clean(p)
	name := filepath.Base(clean)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", "", fmt.Errorf(messages.PathNoFileNameFmt, p)
	}
	return filepath.Dir(clean), name, nil
}
