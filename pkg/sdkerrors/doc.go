// Package sdkerrors provides error definitions shared by the settings engine,
// the collection operations and the command line.
//
// Errors fall into four groups: rejections ([ErrRejected]) raised while
// validating a request against the loaded collections, structural errors
// ([ErrStructure]) raised by the tree primitives, format errors
// ([ErrInvalidFormat]) raised while parsing values or files, and I/O errors
// ([ErrLoad], [ErrPersist]) raised by the store. Callers branch on them with
// [errors.Is].
package sdkerrors
