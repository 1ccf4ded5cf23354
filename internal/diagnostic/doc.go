// Package diagnostic provides structured errors, warnings and infos
// produced while checking rule files.
//
// Key capabilities:
//   - Coded messages ("unknown_transform", "duplicate_target", ...)
//   - Localization by rule index and path
//   - "Did you mean" suggestions
package diagnostic
