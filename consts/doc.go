// Package consts defines the context keys and character sets shared by the
// dashboard packages.
//
//	ctx = ctxutil.SetValue(ctx, consts.SessionKey, id)
//
// Session ids are drawn from NumLowerUpper, see package nanoid.
package consts
