package common

// AnonymousID marks an unauthenticated viewer. It never matches an owner
// or a graph edge, so anonymous viewers only ever see public content.
const AnonymousID uint64 = 0

// Visibility is the declared audience scope of a content item.
type Visibility string

const (
	VisibilityPublic      Visibility = "public"
	VisibilityConnections Visibility = "connections"
	VisibilityPrivate     Visibility = "private"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityConnections, VisibilityPrivate:
		return true
	}
	return false
}

// RelationshipKind distinguishes the three edge types of the social graph.
type RelationshipKind string

const (
	KindConnection RelationshipKind = "connection"
	KindFollow     RelationshipKind = "follow"
	KindBlock      RelationshipKind = "block"
)

// RelationshipStatus is the connection state machine. Follow and block
// edges are unconditional and always stored as accepted.
type RelationshipStatus string

const (
	StatusPending   RelationshipStatus = "pending"
	StatusAccepted  RelationshipStatus = "accepted"
	StatusRejected  RelationshipStatus = "rejected"
	StatusCancelled RelationshipStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed from s.
func (s RelationshipStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusCancelled
}
