// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the state of the hexagon progress
// indicator. The state holds the indicator properties and runs its
// animations; the sibling package widget/material draws it.
package widget
