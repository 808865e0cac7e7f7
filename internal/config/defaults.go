package config

const (
	defaultGalleryRoot      = "public/images/Galerija"
	defaultContentDir       = "src/content"
	defaultLinksFile        = "src/data/contentGalleryLinks.json"
	defaultLogDir           = "~/.local/share/galerija/logs"
	defaultURLPrefix        = "/images/Galerija"
	defaultTopN             = 3
	defaultAutoThreshold    = 70
	defaultSaveEvery        = 5
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			GalleryRoot: defaultGalleryRoot,
			ContentDir:  defaultContentDir,
			LinksFile:   defaultLinksFile,
			LogDir:      defaultLogDir,
		},
		Gallery: Gallery{
			URLPrefix: defaultURLPrefix,
		},
		Matching: Matching{
			TopN: defaultTopN,
		},
		Linking: Linking{
			AutoThreshold: defaultAutoThreshold,
			SaveEvery:     defaultSaveEvery,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
