// Package textutil sanitizes arbitrary strings into safe path segments.
//
// Sanitization replaces the nine characters Windows forbids in file names
// with underscores, strips ASCII control codes, and neutralizes reserved
// device names (CON, PRN, AUX, NUL, COM1-COM9, LPT1-LPT9) appearing in the
// pre-extension position. Nothing else is touched: no trimming, no case
// folding, no length limits, no Unicode normalization. The transformation is
// deterministic and idempotent, so two tag values that differ only in
// forbidden characters may map to the same segment.
package textutil
