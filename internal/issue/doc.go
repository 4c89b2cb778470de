// SPDX-License-Identifier: MPL-2.0

// Package issue turns argument and configuration failures into user-facing
// messages: a short ActionableError with suggestions, and a longer Markdown
// explanation from the issue catalog rendered with glamour.
package issue
