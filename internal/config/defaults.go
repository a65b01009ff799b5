package config

const (
	defaultBaseURL            = "https://api.openai.com/v1"
	defaultAPITimeoutSeconds  = 120
	defaultModel              = "sora-2"
	defaultSize               = "1280x720"
	defaultSeconds            = 4
	defaultInputImage         = "original.png"
	defaultPollInterval       = 10
	defaultPollTimeout        = 600
	defaultOutputDir          = "output"
	defaultFramesDir          = "output/sprite_frames"
	defaultSheetPath          = "output/spritesheet.png"
	defaultCellSize           = 128
	defaultBackground         = "#FFFFFF"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLetterboxAnimation = "hatching"
)

// Models accepted by the service.
var ValidModels = []string{"sora-2", "sora-2-pro"}

// Video resolutions accepted by the service.
var ValidSizes = []string{"1280x720", "720x1280", "1792x1024", "1024x1792"}

// Durations (seconds) accepted by the service.
var ValidSeconds = []int{4, 8, 12}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL:        defaultBaseURL,
			TimeoutSeconds: defaultAPITimeoutSeconds,
		},
		Video: Video{
			Model:      defaultModel,
			Size:       defaultSize,
			Seconds:    defaultSeconds,
			InputImage: defaultInputImage,
		},
		Poll: Poll{
			IntervalSeconds: defaultPollInterval,
			TimeoutSeconds:  defaultPollTimeout,
		},
		Output: Output{
			Dir: defaultOutputDir,
		},
		Spritesheet: Spritesheet{
			FramesDir:  defaultFramesDir,
			SheetPath:  defaultSheetPath,
			CellSize:   defaultCellSize,
			Background: defaultBackground,
			Letterbox:  []string{defaultLetterboxAnimation},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
