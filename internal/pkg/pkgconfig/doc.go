// Package pkgconfig reads application settings through the Config interface.
//
// Viper is the only implementation. It loads one file at startup and never
// reloads it, so values read during bootstrap stay valid for the process
// lifetime.
package pkgconfig
