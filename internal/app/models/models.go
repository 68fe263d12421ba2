// Package models contains the persistent document types stored in MongoDB
// and the closed enumerations they reference.
package models
