package server

// Server bundles the entity-specific HTTP servers. There is only the
// pricing one here, but the shape leaves room for more.
type Server struct {
	PriceServer
}

func NewServer(
	priceServer PriceServer,
) Server {
	return Server{
		PriceServer: priceServer,
	}
}
