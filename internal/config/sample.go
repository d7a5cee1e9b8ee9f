package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# folio configuration
version: "1.0"

content:
  # Portfolio YAML file. Leave empty to use the built-in sample portfolio.
  path: ""
  # Reload the TUI when the content file changes.
  watch: false

typewriter:
  # Comma-separated phrases for the hero text. Overrides the content tagline.
  phrases: ""
  type_delay: 100ms
  delete_delay: 50ms
  # Pause on the fully typed phrase before deleting starts.
  pause: 1s

theme:
  # light or dark, used until a choice has been saved.
  default: light
  state_path: ~/.config/folio/state.yaml

page:
  navbar_threshold: 3
  back_to_top_threshold: 20
  skill_bar_delay: 200ms
  skill_bar_duration: 1s
  filter_show_delay: 100ms
  filter_hide_delay: 300ms
  scroll_frame: 16ms

contact:
  # Simulated submission time.
  submit_delay: 1s
  success_timeout: 5s

output:
  color_mode: auto   # auto, always, never
  verbose: false
  log_file: ~/.local/state/folio/folio.log
`
}

// MinimalSampleConfig returns a compact configuration file with essential settings
func MinimalSampleConfig() string {
	return `version: "1.0"
content:
  path: ""
typewriter:
  phrases: ""
theme:
  default: light
`
}
