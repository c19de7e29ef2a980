package bacnet

import (
	"bytes"
	"fmt"
)

// TagList is an ordered, finite sequence of Tags with stream-like
// consumption operators. A well-formed TagList nests and balances its
// opening/closing brackets.
type TagList struct {
	tags []Tag
}

// NewTagList wraps an existing slice of tags. The slice is taken by
// reference; callers that need independent copies should clone first.
func NewTagList(tags []Tag) *TagList {
	return &TagList{tags: tags}
}

// Len returns the number of tags remaining in the list.
func (l *TagList) Len() int { return len(l.tags) }

// Tags returns the underlying slice of tags, in order.
func (l *TagList) Tags() []Tag { return l.tags }

// Append adds a tag to the end of the list.
func (l *TagList) Append(t Tag) { l.tags = append(l.tags, t) }

// Extend appends every tag from another list's contents.
func (l *TagList) Extend(tags []Tag) { l.tags = append(l.tags, tags...) }

// Peek returns the tag at the front of the list without consuming it,
// and false if the list is empty.
func (l *TagList) Peek() (Tag, bool) {
	if len(l.tags) == 0 {
		return Tag{}, false
	}
	return l.tags[0], true
}

// PushFront returns a tag to the front of the list.
func (l *TagList) PushFront(t Tag) {
	l.tags = append([]Tag{t}, l.tags...)
}

// Pop removes and returns the tag at the front of the list.
func (l *TagList) Pop() (Tag, bool) {
	if len(l.tags) == 0 {
		return Tag{}, false
	}
	t := l.tags[0]
	l.tags = l.tags[1:]
	return t, true
}

// PopContext returns either:
//   - an empty list, if the list is empty or its head is a closing tag
//     (so as not to consume someone else's closing bracket);
//   - a one-element list, if the head is application or context class;
//   - otherwise the balanced bracketed run starting at the head,
//     inclusive of the outermost opening/closing pair.
//
// An unbalanced scan (brackets never close) is an InvalidTagError.
func (l *TagList) PopContext() (*TagList, error) {
	const op = "TagList.PopContext"

	head, ok := l.Peek()
	if !ok {
		return NewTagList(nil), nil
	}

	if head.Class == TagClassApplication || head.Class == TagClassContext {
		l.Pop()
		return NewTagList([]Tag{head}), nil
	}

	if head.Class == TagClassClosing {
		return NewTagList(nil), nil
	}

	depth := 0
	i := 0
	for ; i < len(l.tags); i++ {
		switch l.tags[i].Class {
		case TagClassOpening:
			depth++
		case TagClassClosing:
			depth--
			if depth == 0 {
				i++ // include this closing tag in the slice
				goto matched
			}
		}
	}
	return nil, newInvalidTag(op, "mismatched open/close tags")

matched:
	out := make([]Tag, i)
	copy(out, l.tags[:i])
	l.tags = l.tags[i:]
	return NewTagList(out), nil
}

// Encode concatenates the wire encoding of every tag in order.
func (l *TagList) Encode() []byte {
	var buf bytes.Buffer
	for _, t := range l.tags {
		t.Encode(&buf)
	}
	return buf.Bytes()
}

// DecodeTagList decodes tags from data until the buffer is exhausted.
func DecodeTagList(data []byte) (*TagList, error) {
	r := newByteReader(data)
	var tags []Tag
	for r.Len() > 0 {
		t, err := DecodeTag(r)
		if err != nil {
			return nil, wrapDecoding("DecodeTagList", fmt.Errorf("full packet %s: %w", hexDump(data), err))
		}
		tags = append(tags, t)
	}
	return NewTagList(tags), nil
}
