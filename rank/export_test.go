// SPDX-License-Identifier: MIT

package rank

// WithClock exposes withClock to the external test package.
var WithClock = withClock
