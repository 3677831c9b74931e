package config

// StarterTemplate is the commented starter configuration written by
// `diagnosticss init`.
const StarterTemplate = `# diagnosticss configuration
# See "diagnosticss rules" for the full rule catalog.

# File extensions treated as HTML.
extensions:
  - .html
  - .htm
  - .xhtml

# Glob patterns for files and directories to skip.
ignore:
  - node_modules/**
  - vendor/**

# Guard rails for pathological documents. Zero means unlimited.
max_depth: 0
max_nodes: 0

# Per-rule overrides, keyed by rule ID.
rules:
  # Downgrade deprecated-element findings to warnings:
  # deprecated-element:
  #   severity: warning

  # Turn off the target attribute check entirely:
  # link-target:
  #   enabled: false
`
