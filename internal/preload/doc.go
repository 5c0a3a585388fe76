// Package preload imports contacts described by a preloaded contacts JSON
// document.
//
// The document lists contacts, each with an array of data entries:
//
//	{"contacts": [{"data": [{"@mimetype": "{{@$StructuredName.CONTENT_ITEM_TYPE}}",
//	                         "@$StructuredName.DISPLAY_NAME": "张三"}]}]}
//
// Keys are symbolic names of persistence-layer constants and are always
// resolved. A value is resolved only when it is wrapped in {{...}}; otherwise
// it is stored verbatim. "@mimetype" names the data row's mimetype column and
// any other "@" stands for the CommonDataKinds class. A name resolves by
// splitting at its last dot into class and field and looking both up in a
// fixed constants table. Entries whose key or value resolves to nothing are
// skipped.
//
// Each contact becomes a raw contact insert followed by one data insert per
// entry referencing it. Import applies the batch to the contacts store while
// holding a cross-process file lock.
package preload
