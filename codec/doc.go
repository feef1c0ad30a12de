// Package codec defines the pluggable serialization contract used by the
// REST client: a Serializer turns request body values into bytes and a
// Deserializer turns response bytes into values.
//
// JSON is the default on both sides. The Passthrough pair disables
// (de)serialization entirely for callers that work with pre-encoded
// payloads or raw response bytes:
//
//	client.WithSerializer(codec.PassthroughSerialize)
//	client.WithDeserializer(codec.PassthroughDeserialize)
//
// Failures surface as *SerializationError and *DeserializationError and
// propagate to the caller unchanged.
package codec
