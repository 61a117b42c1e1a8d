package schema

// Access is a desired access mask as passed to CreateFile.
type Access uint32

const (
	AccessReadData        Access = 0x0001
	AccessWriteData       Access = 0x0002
	AccessAppendData      Access = 0x0004
	AccessReadEA          Access = 0x0008
	AccessWriteEA         Access = 0x0010
	AccessReadAttributes  Access = 0x0080
	AccessWriteAttributes Access = 0x0100

	AccessReadControl Access = 0x00020000
	AccessSynchronize Access = 0x00100000

	// AccessGenericRead is FILE_GENERIC_READ.
	AccessGenericRead = AccessReadControl | AccessReadData | AccessReadAttributes |
		AccessReadEA | AccessSynchronize

	// AccessGenericWrite is FILE_GENERIC_WRITE.
	AccessGenericWrite = AccessReadControl | AccessWriteData | AccessWriteAttributes |
		AccessWriteEA | AccessAppendData | AccessSynchronize
)

// CanRead reports whether the mask grants reading file data.
func (a Access) CanRead() bool {
	return a&AccessReadData != 0
}

// CanWrite reports whether the mask grants writing file data.
func (a Access) CanWrite() bool {
	return a&(AccessWriteData|AccessAppendData) != 0
}

// ShareMode is the sharing mask passed to CreateFile.
type ShareMode uint32

const (
	ShareNone   ShareMode = 0x0
	ShareRead   ShareMode = 0x1
	ShareWrite  ShareMode = 0x2
	ShareDelete ShareMode = 0x4
)

// Disposition is the creation disposition passed to CreateFile.
type Disposition uint32

const (
	CreateNew        Disposition = 1
	CreateAlways     Disposition = 2
	OpenExisting     Disposition = 3
	OpenAlways       Disposition = 4
	TruncateExisting Disposition = 5
)
