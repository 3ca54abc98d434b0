package content

import "fmt"

// ReactionKind names one of the reactions a reader can leave on a post.
type ReactionKind string

const (
	ReactionLike       ReactionKind = "like"
	ReactionLove       ReactionKind = "love"
	ReactionInsightful ReactionKind = "insightful"
)

// ReactionKinds lists the accepted kinds in display order.
var ReactionKinds = []ReactionKind{ReactionLike, ReactionLove, ReactionInsightful}

// ParseReactionKind validates a kind submitted by a reader.
func ParseReactionKind(s string) (ReactionKind, error) {
	for _, k := range ReactionKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("content: unknown reaction %q", s)
}

// Reactions counts reactions per kind.
type Reactions map[ReactionKind]int64

// Total sums every kind.
func (r Reactions) Total() int64 {
	var n int64
	for _, v := range r {
		n += v
	}
	return n
}
