// Package escpos renders order receipts as ESC/POS byte streams for the
// Bluetooth thermal printer used at the counter.
package escpos

import (
	"bytes"
	"fmt"
	"strings"
)

// Width is the printable column count of the 58mm printer profile.
const Width = 32

// ESC/POS opcodes the printer understands. No framing or checksum; the
// stream is plain text with control prefixes.
var (
	Init        = []byte{0x1b, 0x40}             // ESC @
	AlignCenter = []byte{0x1b, 0x61, 0x01}       // ESC a 1
	AlignLeft   = []byte{0x1b, 0x61, 0x00}       // ESC a 0
	FeedCut     = []byte{0x1d, 0x56, 0x41, 0x10} // GS V A 16
)

// Sanitize strips characters the printer cannot render: everything outside
// ASCII, then anything but letters, digits, whitespace and basic punctuation.
func Sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > 0x7f {
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n':
			b.WriteRune(r)
		case r == '-' || r == '.' || r == ',' || r == '(' || r == ')':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// FormatRupiah renders an amount as "Rp. 20.000".
func FormatRupiah(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	digits := fmt.Sprintf("%d", v)
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	out := "Rp. " + strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}

// Builder assembles a receipt line by line so that column padding lives in
// one place instead of inline string arithmetic.
type Builder struct {
	buf bytes.Buffer
}

func (b *Builder) Raw(p []byte)  { b.buf.Write(p) }
func (b *Builder) Line(s string) { b.buf.WriteString(s); b.buf.WriteByte('\n') }
func (b *Builder) Divider()      { b.Line(strings.Repeat("-", Width)) }
func (b *Builder) Bytes() []byte { return b.buf.Bytes() }

// Centered writes lines under center alignment and switches back to left.
func (b *Builder) Centered(lines ...string) {
	b.Raw(AlignCenter)
	for _, ln := range lines {
		b.Line(ln)
	}
	b.Raw(AlignLeft)
}

// TwoCol pads left and right apart to the full paper width, keeping at
// least one space between them. Overlong content pushes past the width
// rather than truncating.
func (b *Builder) TwoCol(left, right string) {
	gap := Width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	b.Line(left + strings.Repeat(" ", gap) + right)
}
