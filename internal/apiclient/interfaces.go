package apiclient

import (
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/adoption"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/listing"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/message"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/user"
)

var (
	_ pet.Catalog                    = (*Client)(nil)
	_ adoption.ApplicationRepository = (*Client)(nil)
	_ listing.ListingRepository      = (*Client)(nil)
	_ message.Inbox                  = (*Client)(nil)
	_ user.Directory                 = (*Client)(nil)
)
