package inbox

import "strings"

// Composer holds the in-progress outgoing message text. The buffer survives
// switching conversations: a draft typed for one conversation stays in place
// until it is sent or edited away, matching the reference client.
type Composer struct {
	text string
}

// SetText replaces the buffer.
func (c *Composer) SetText(s string) {
	c.text = s
}

// Text returns the buffer as typed, untrimmed.
func (c *Composer) Text() string {
	return c.text
}

// CanSubmit reports whether the trimmed buffer is non-empty. Empty messages
// are rejected here and never reach the network.
func (c *Composer) CanSubmit() bool {
	return strings.TrimSpace(c.text) != ""
}

// Consume returns the trimmed buffer and clears it.
func (c *Composer) Consume() string {
	t := strings.TrimSpace(c.text)
	c.text = ""
	return t
}

// clear empties the buffer without returning it.
func (c *Composer) clear() {
	c.text = ""
}

// peek returns the trimmed buffer without clearing it. Sends read the buffer
// at dispatch time but only clear it once the backend confirms, so a failed
// send leaves the user's text in place for retry.
func (c *Composer) peek() string {
	return strings.TrimSpace(c.text)
}
