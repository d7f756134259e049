// Package tokens estimates how many LLM tokens a blueprint consumes, so
// users can judge how much of a model's context window a template will take.
package tokens

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// encodingModel selects the tokenizer vocabulary. gpt-4o maps to the
// o200k_base encoding, a reasonable default across current chat models.
const encodingModel = "gpt-4o"

// Counter counts tokens with tiktoken, lazily initializing the encoder on
// first use. If the encoder cannot be initialized (e.g. the BPE data is not
// available offline), Count degrades to a chars/4 estimate instead of
// failing: token counts are advisory and must never break a listing.
type Counter struct {
	once sync.Once
	enc  *tiktoken.Tiktoken
}

// NewCounter returns a lazy token counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Count returns the token count of text, or a rough estimate when no
// encoder is available.
func (c *Counter) Count(text string) int {
	c.once.Do(func() {
		enc, err := tiktoken.EncodingForModel(encodingModel)
		if err == nil {
			c.enc = enc
		}
	})
	if c.enc == nil {
		return Estimate(text)
	}
	return len(c.enc.Encode(text, nil, nil))
}

// Estimate approximates the token count as one token per four characters,
// the usual rule of thumb for English prose.
func Estimate(text string) int {
	return (len(text) + 3) / 4
}
