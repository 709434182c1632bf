// Package app contains the core application logic of the hef tool. It
// defines the App struct, its configuration, and the command dispatch,
// decoupled from any specific entrypoint like a CLI or server.
package app
