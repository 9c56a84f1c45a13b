// Package internal contains the cgo-free infrastructure of the pksm client:
// logging, theming, the texture cache shared by the backends, sprite
// rasterization and the power button handler.
// Types and functions in this package are not part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
