// Package fontdata reads and writes the Lua metadata that accompanies a
// glyph atlas.
//
// The file is a Lua chunk returning one table:
//
//	return {
//		Name = "Go.Regular";
//		Size = 12;
//		Characters = {
//			{ Char = 'A'; AdvanceWidth = 10; ImageX = 0; ImageY = 0; ImageWidth = 9; ImageHeight = 12; };
//		}
//	}
//
// Encode reproduces this layout byte for byte, tabs and trailing
// semicolons included, because renderers match on it. Characters are
// written in the order they were added. Consumers must still only rely on
// one record per character, not on the order.
//
// Decode runs the chunk in a sandboxed Lua state (no standard libraries)
// and reads the returned table back.
package fontdata
