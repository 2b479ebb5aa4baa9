package common

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version is injected at build time:
//
//	go build -ldflags "-X github.com/Alia5/rivegen/internal/codegen/common.Version=1.2.3"
var Version = ""

const devVersion = "0.0.1-dev"

// GetVersion reports the generator version exposed to templates. When Version
// is unset the module version recorded by `go install` is used, then a
// development marker.
func GetVersion() (string, error) {
	v := Version
	if v == "" {
		v = buildInfoVersion()
	}
	if v == "" {
		return devVersion, nil
	}
	return normalizeVersion(v)
}

func normalizeVersion(v string) (string, error) {
	v = strings.TrimPrefix(v, "v")
	core, _, _ := strings.Cut(v, "-")
	if strings.Count(core, ".") != 2 {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", v)
	}
	return v, nil
}

func buildInfoVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "(devel)" {
		return ""
	}
	return info.Main.Version
}
