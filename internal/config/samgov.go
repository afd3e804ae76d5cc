package config

type SAMGov struct {
	// APIKey grants access to the upstream opportunity search. Leaving it
	// empty disables searches, the API reports the missing credential.
	APIKey  string `env:"API_KEY,expand"`
	BaseURL string `env:"BASE_URL,expand" envDefault:"https://api.sam.gov/opportunities/v2/search"`
}
