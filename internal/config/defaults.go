package config

// Default video extensions shared by all three tools. Kept in sync with
// the formats ffmpeg handles without demuxer hints.
var defaultVideoExtensions = []string{
	".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm", ".m4v",
}

const (
	defaultScaleAlgorithm = "lanczos"
	defaultSharpenAmount  = 1.0
	defaultSharpenLuma    = 5
	defaultDenoiseLuma    = 4.0
	defaultDenoiseChroma  = 3.0
	defaultVideoCodec     = "libx264"
	defaultPreset         = "slow"
	defaultCRF            = 18
	defaultAudioCodec     = "aac"
	defaultAudioBitrate   = "192k"
	defaultOutputSuffix   = "_enhanced"

	defaultDateFormat   = "%y%m%d"
	defaultAnalysisJSON = "analysis_results.json"
	defaultVideoSubdir  = "Video"
	defaultDataSubdir   = "DATA"

	defaultSizeLimitMB   = 200
	defaultArchiveSubdir = "originals-oversize"
)

// Default returns a Config populated with repository defaults. Directory
// paths are intentionally empty: the tools refuse to run until the user
// points them somewhere.
func Default() Config {
	return Config{
		Enhance: Enhance{
			TargetWidth:    1920,
			TargetHeight:   1080,
			ScaleAlgorithm: defaultScaleAlgorithm,
			SharpenAmount:  defaultSharpenAmount,
			SharpenLumaX:   defaultSharpenLuma,
			SharpenLumaY:   defaultSharpenLuma,
			Denoise:        false,
			DenoiseLuma:    defaultDenoiseLuma,
			DenoiseChroma:  defaultDenoiseChroma,
			VideoCodec:     defaultVideoCodec,
			Preset:         defaultPreset,
			CRF:            defaultCRF,
			AudioCodec:     defaultAudioCodec,
			AudioBitrate:   defaultAudioBitrate,
			Extensions:     append([]string(nil), defaultVideoExtensions...),
			OutputSuffix:   defaultOutputSuffix,
			SkipExisting:   true,
		},
		Mover: Mover{
			DateFormat:   defaultDateFormat,
			AnalysisJSON: defaultAnalysisJSON,
			VideoSubdir:  defaultVideoSubdir,
			DataSubdir:   defaultDataSubdir,
			Extensions:   append([]string(nil), defaultVideoExtensions...),
			ClearSource:  true,
			OnExisting:   ExistingMerge,
		},
		Split: Split{
			SizeLimitMB:   defaultSizeLimitMB,
			ArchiveSubdir: defaultArchiveSubdir,
			Extensions:    append([]string(nil), defaultVideoExtensions...),
		},
		Logging: Logging{
			Color: ColorAuto,
		},
	}
}
