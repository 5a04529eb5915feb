package definition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Policy decides what happens when entries of equal priority claim the same lookup key.
type Policy string

const (
	// PolicyReject fails the build on any equal-priority collision.
	PolicyReject Policy = "reject"
	// PolicyLast lets the later declaration win and reports the override.
	PolicyLast Policy = "last"
)

// ErrCollision is returned under PolicyReject when two ids claim one key at the same priority.
var ErrCollision = errors.New("mapping collision")

// ParsePolicy validates a policy name.
func ParsePolicy(name string) (Policy, error) {
	switch p := Policy(name); p {
	case PolicyReject, PolicyLast:
		return p, nil
	default:
		return "", fmt.Errorf("unknown collision policy %q, expected %q or %q", name, PolicyReject, PolicyLast)
	}
}

// Claim is one entry asking for a lookup key, e.g. an extension, to resolve to its icon id.
type Claim struct {
	Key      string
	ID       string
	Priority int
	Order    int
}

// Collision records a key that several ids claimed at the winning priority.
type Collision struct {
	Key    string
	Winner string
	Losers []string
}

func (c Collision) String() string {
	return fmt.Sprintf("%q claimed by %s", c.Key, strings.Join(append(c.Losers, c.Winner), ", "))
}

// Claims collects key claims in declaration order.
type Claims struct {
	claims []Claim
}

// Add records that id claims key with the given priority.
func (c *Claims) Add(key, id string, priority int) {
	c.claims = append(c.claims, Claim{Key: key, ID: id, Priority: priority, Order: len(c.claims)})
}

// Resolve turns the claims into a key -> id table.
// The highest priority wins. Equal-priority claims by different ids are collisions:
// they fail under PolicyReject and go to the latest declaration under PolicyLast.
// Collisions resolved under PolicyLast are returned so callers can report them.
func (c *Claims) Resolve(policy Policy) (map[string]string, []Collision, error) {
	resolved := make(map[string]string)
	var collisions []Collision

	groups := lo.GroupBy(c.claims, func(cl Claim) string { return cl.Key })
	keys := lo.Uniq(lo.Map(c.claims, func(cl Claim, _ int) string { return cl.Key }))

	for _, k := range keys {
		group := groups[k]
		top := lo.MaxBy(group, func(a, b Claim) bool { return a.Priority > b.Priority }).Priority
		contenders := lo.Filter(group, func(cl Claim, _ int) bool { return cl.Priority == top })
		winner := lo.MaxBy(contenders, func(a, b Claim) bool { return a.Order > b.Order })
		resolved[k] = winner.ID

		losers := lo.Without(lo.Uniq(lo.Map(contenders, func(cl Claim, _ int) string { return cl.ID })), winner.ID)
		if len(losers) > 0 {
			collisions = append(collisions, Collision{Key: k, Winner: winner.ID, Losers: losers})
		}
	}

	if policy != PolicyLast && len(collisions) > 0 {
		return nil, collisions, fmt.Errorf("%w: %s", ErrCollision, strings.Join(lo.Map(collisions, func(c Collision, _ int) string {
			return c.String()
		}), "; "))
	}

	return resolved, collisions, nil
}
