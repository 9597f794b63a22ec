// Package entity holds the data contracts served by the mock backend.
//
// Each contract is a plain struct implementing Entity. ToRecord is the only
// way a contract reaches the store or the wire, and a Codec is the only way a
// raw record becomes a contract: Codec.Decode validates field presence and
// types with ozzo-validation before building the struct.
//
//	client, err := entity.ClientCodec.Decode(body)
//	if err != nil {
//		return err // validation error naming every offending field
//	}
//	store.Add(ctx, entity.KindClient, client.ToRecord())
package entity
