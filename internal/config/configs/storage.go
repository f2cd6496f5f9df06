package configs

// Storage describes where uploaded files (logos, banners, covers) are
// publicly served from.
type Storage struct {
	PublicURL   string `env:"PUBLIC_URL" envDefault:"http://localhost:8080/storage"`
	Placeholder string `env:"PLACEHOLDER" envDefault:"http://localhost:8080/images/placeholder.png"`
}
