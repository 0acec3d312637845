package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# breedview configuration
version: "1.0"

lookup:
  # Root of the dog image API. Images are fetched from
  # {base_url}/breed/{breed}/images
  base_url: "https://dog.ceo/api"
  timeout: 10s
  # How many image URLs to show per breed
  max_images: 5
  user_agent: "breedview"

debounce:
  # Quiet period after the last keystroke before a lookup starts
  delay: 500ms

ui:
  # default | high-contrast | minimal
  theme: "default"
  # auto | always | never
  color_mode: "auto"
  placeholder: "` + DefaultPlaceholder + `"
  # Re-apply theme and placeholder when this file changes
  auto_reload: false
  no_emoji: false

output:
  # Format for 'breedview lookup': text | json | markdown | csv
  default_format: "text"

log:
  # Where logs go while the TUI owns the terminal. Empty discards them
  # unless --verbose is set.
  file: ""
  verbose: false
`
}

// MinimalSampleConfig returns a compact configuration file
func MinimalSampleConfig() string {
	return `version: "1.0"
debounce:
  delay: 500ms
ui:
  theme: "default"
`
}
