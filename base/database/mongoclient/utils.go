package mongoclient

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// MakeBsonM flattens a patch struct into the fields a $set should
// touch. Nil pointers and zero values stay out of the patch, while a
// set pointer gets through even when it points at a zero value, that
// is how a patch clears a field.
func MakeBsonM(patchable interface{}) (bson.M, error) {
	val := reflect.ValueOf(patchable)
	if val.Kind() == reflect.Ptr && val.Elem().Kind() == reflect.Struct {
		val = val.Elem()
	}

	m := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)

		tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i))
		if err != nil {
			return nil, err
		}
		if tag.Skip || !field.CanInterface() {
			continue
		}
		if tag.OmitEmpty && field.IsZero() {
			continue
		}

		switch {
		case field.Kind() == reflect.Ptr && !field.IsNil():
			m[tag.Name] = field.Elem().Interface()
		case !field.IsZero():
			m[tag.Name] = field.Interface()
		}
	}

	return m, nil
}
