// Package abi recognizes ABI descriptors, strings of the form
// "arch-os-flavor-format-widthbit" such as "x86-linux-generic-elf-64bit".
//
// A kit may name an ABI descriptor in place of a toolchain id, standing in
// for a toolchain that is not registered in the toolchain collection.
package abi
