package interfaces

// ICollectionNotifier is told about every write so live lists refresh without
// waiting for their next poll.
//
//go:generate mockgen -source=live_interface.go -destination=mocks/mock_live.go -package=mock_interfaces
type ICollectionNotifier interface {
	Notify(collection string)
}
