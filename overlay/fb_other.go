//go:build !linux

package overlay

import "fmt"

// OpenFramebuffer is only available on Linux.
func OpenFramebuffer(device string) (Surface, error) {
	return nil, fmt.Errorf("framebuffer surface is only supported on linux")
}
