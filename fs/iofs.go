package fs

import (
	iofs "io/fs"
)

var (
	ErrInvalid  = iofs.ErrInvalid
	ErrExist    = iofs.ErrExist
	ErrNotExist = iofs.ErrNotExist

	ValidPath = iofs.ValidPath
)

const (
	ModeDir     = iofs.ModeDir
	ModeSymlink = iofs.ModeSymlink
	ModeSetuid  = iofs.ModeSetuid
	ModeSetgid  = iofs.ModeSetgid
	ModeSticky  = iofs.ModeSticky
	ModeType    = iofs.ModeType
	ModePerm    = iofs.ModePerm
)

type (
	FS        = iofs.FS
	File      = iofs.File
	FileInfo  = iofs.FileInfo
	FileMode  = iofs.FileMode
	PathError = iofs.PathError
	StatFS    = iofs.StatFS
)
