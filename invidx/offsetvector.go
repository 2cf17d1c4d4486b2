// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package invidx

// OffsetVector is a length-prefixed, borrowed view over term position data.
// A Go slice is already a non-owning "pointer + length" view of someone
// else's backing array, which is exactly the borrowed-pointer semantics this
// type needs: Data == nil iff Len() == 0.
type OffsetVector struct {
	Data []byte
}

// Len returns the number of bytes currently borrowed.
func (v OffsetVector) Len() uint32 {
	return uint32(len(v.Data))
}

// GetData returns the borrowed view. Callers must not retain it past the
// lifetime the owner of the backing array promises.
func (v OffsetVector) GetData() []byte {
	return v.Data
}

// SetData overwrites the view. The caller is responsible for data staying
// valid for as long as v (or anything that copies v) is in use. An empty
// data leaves v.Data nil.
func (v *OffsetVector) SetData(data []byte) {
	if len(data) == 0 {
		v.Data = nil
		return
	}
	v.Data = data
}

// CopyData deep-copies src's bytes into v, allocating a fresh, independently
// owned backing array. If src is empty, v.Data becomes nil.
func (v *OffsetVector) CopyData(src OffsetVector) {
	if len(src.Data) == 0 {
		v.Data = nil
		return
	}
	v.Data = append([]byte(nil), src.Data...)
}

// FreeData releases the allocation made by a prior CopyData call, if any.
// It is always safe to call, including on a vector that only ever borrowed
// data via SetData; Go's garbage collector does the actual reclamation, but
// the explicit call keeps the copy/free pairing visible in the API rather
// than relying on scope exit.
func (v *OffsetVector) FreeData() {
	v.Data = nil
}
