// Package hcl provides the HCL implementation of config.Loader. It finds
// settings files, decodes them with gohcl and merges them into a single
// config.Settings.
package hcl
