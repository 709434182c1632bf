// Package config defines the format-agnostic settings model for the hef
// tool and the Loader interface that concrete formats implement.
//
// Settings carry logging and listen defaults plus named stock presets. A
// stock replaces a model's variant, so the same HEF file can be costed
// against different cross-sections. The HCL implementation lives in
// internal/hcl.
package config
