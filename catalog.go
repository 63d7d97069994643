package access

import "github.com/photodesk/access/types"

// capabilities of the photo editing storefront
const (
	PlaceOrders    types.Capability = "orders.place"
	TrackOrders    types.Capability = "orders.track"
	UploadPhotos   types.Capability = "photos.upload"
	ProcessOrders  types.Capability = "orders.process"
	DeliverEdits   types.Capability = "orders.deliver"
	ManageOrders   types.Capability = "orders.manage"
	ManageServices types.Capability = "services.manage"
	ManageUsers    types.Capability = "users.manage"
	ViewReports    types.Capability = "reports.view"
)

// DefaultCatalog is the storefront's built-in permission catalog.
// Each role's grants are enumerated in full: staff and admin repeat the
// capabilities of the tiers below rather than inheriting them, there is no
// hierarchy to fall through.
func DefaultCatalog() types.Catalog {
	c, e := NewCatalog(map[types.Role]types.CapabilitySet{
		types.Customer: types.NewCapabilitySet(
			PlaceOrders,
			TrackOrders,
			UploadPhotos,
		),
		types.Editor: types.NewCapabilitySet(
			TrackOrders,
			ProcessOrders,
			DeliverEdits,
		),
		types.Staff: types.NewCapabilitySet(
			TrackOrders,
			ProcessOrders,
			DeliverEdits,
			ManageOrders,
			ManageServices,
			ViewReports,
		),
		types.Admin: types.NewCapabilitySet(
			PlaceOrders,
			TrackOrders,
			UploadPhotos,
			ProcessOrders,
			DeliverEdits,
			ManageOrders,
			ManageServices,
			ManageUsers,
			ViewReports,
		),
	})
	if e != nil {
		// the table above covers every enumerated role
		panic(e)
	}
	return c
}
