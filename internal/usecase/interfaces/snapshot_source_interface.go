package interfaces

// ISnapshotSource pushes the full contents of a collection every time it
// changes. The cancel function must be called to release the subscription.
type ISnapshotSource[T any] interface {
	Subscribe() (snapshots <-chan []T, cancel func())
}
