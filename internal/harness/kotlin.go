package harness

// Kotlin shares the JVM image with Java. Top-level user functions compile to
// static members of MainKt, so the harness reflects over its own class first
// and falls back to a Solution class. Jackson handles both directions of the
// JSON envelope.
const Kotlin = `import java.io.BufferedReader
import java.io.InputStreamReader
import java.lang.reflect.InvocationTargetException
import java.lang.reflect.Method
import java.lang.reflect.Modifier
import java.util.ArrayDeque
import java.util.IdentityHashMap
import com.fasterxml.jackson.databind.JsonNode
import com.fasterxml.jackson.databind.ObjectMapper

class ListNode(var ` + "`val`" + `: Int = 0) {
    var next: ListNode? = null
}

class TreeNode(var ` + "`val`" + `: Int = 0) {
    var left: TreeNode? = null
    var right: TreeNode? = null
}

class GraphNode(var ` + "`val`" + `: Int = 0) {
    var neighbors: MutableList<GraphNode?> = mutableListOf()
}

__SOURCE_CODE_PLACEHOLDER__

private val mapper = ObjectMapper()

private fun buildLinkedList(values: JsonNode, pos: Int): ListNode? {
    if (values.size() == 0) return null
    val nodes = values.map { ListNode(it.asInt()) }
    for (i in 0 until nodes.size - 1) nodes[i].next = nodes[i + 1]
    if (pos in 0 until nodes.size) nodes[nodes.size - 1].next = nodes[pos]
    return nodes[0]
}

private fun linkedListToArray(head: ListNode?): List<Int> {
    val result = mutableListOf<Int>()
    val seen = java.util.Collections.newSetFromMap(IdentityHashMap<ListNode, Boolean>())
    var curr = head
    while (curr != null && curr !in seen) {
        seen.add(curr)
        result.add(curr.` + "`val`" + `)
        curr = curr.next
    }
    return result
}

private fun buildTree(values: JsonNode): TreeNode? {
    if (values.size() == 0 || values[0].isNull) return null
    val root = TreeNode(values[0].asInt())
    val queue = ArrayDeque<TreeNode>()
    queue.add(root)
    var i = 1
    while (queue.isNotEmpty() && i < values.size()) {
        val node = queue.poll()
        if (i < values.size() && !values[i].isNull) {
            node.left = TreeNode(values[i].asInt())
            queue.add(node.left!!)
        }
        i++
        if (i < values.size() && !values[i].isNull) {
            node.right = TreeNode(values[i].asInt())
            queue.add(node.right!!)
        }
        i++
    }
    return root
}

private fun treeToArray(root: TreeNode?): List<Int?> {
    if (root == null) return emptyList()
    val result = mutableListOf<Int?>()
    val frontier = mutableListOf<TreeNode?>(root)
    while (frontier.isNotEmpty()) {
        val node = frontier.removeAt(0)
        if (node == null) {
            result.add(null)
            continue
        }
        result.add(node.` + "`val`" + `)
        frontier.add(node.left)
        frontier.add(node.right)
    }
    while (result.isNotEmpty() && result.last() == null) result.removeAt(result.size - 1)
    return result
}

private fun buildGraph(adjList: JsonNode): GraphNode? {
    if (adjList.size() == 0) return null
    val nodes = (0 until adjList.size()).map { GraphNode(it + 1) }
    for (i in 0 until adjList.size()) {
        for (n in adjList[i]) {
            val v = n.asInt()
            if (v in 1..nodes.size) nodes[i].neighbors.add(nodes[v - 1])
        }
    }
    return nodes[0]
}

private fun graphToAdjList(node: GraphNode?): List<List<Int>> {
    if (node == null) return emptyList()
    val seen = java.util.Collections.newSetFromMap(IdentityHashMap<GraphNode, Boolean>())
    val ordered = mutableListOf<GraphNode>()
    val queue = ArrayDeque<GraphNode>()
    queue.add(node)
    var maxVal = 0
    while (queue.isNotEmpty()) {
        val curr = queue.poll()
        if (curr in seen) continue
        seen.add(curr)
        ordered.add(curr)
        if (curr.` + "`val`" + ` > maxVal) maxVal = curr.` + "`val`" + `
        for (n in curr.neighbors) {
            if (n != null && n !in seen) queue.add(n)
        }
    }
    val result = MutableList(maxVal) { listOf<Int>() }
    for (curr in ordered) {
        result[curr.` + "`val`" + ` - 1] = curr.neighbors.filterNotNull().map { it.` + "`val`" + ` }
    }
    return result
}

private fun convert(value: JsonNode, type: Class<*>, cyclePos: Int): Any? = when (type) {
    Int::class.java, Integer::class.java -> value.asInt()
    Long::class.java, java.lang.Long::class.java -> value.asLong()
    Double::class.java, java.lang.Double::class.java -> value.asDouble()
    Boolean::class.java, java.lang.Boolean::class.java -> value.asBoolean()
    String::class.java -> value.asText()
    IntArray::class.java -> IntArray(value.size()) { value[it].asInt() }
    Array<IntArray>::class.java ->
        Array(value.size()) { i -> IntArray(value[i].size()) { j -> value[i][j].asInt() } }
    Array<CharArray>::class.java ->
        Array(value.size()) { i -> CharArray(value[i].size()) { j -> value[i][j].asText()[0] } }
    List::class.java -> value.map { mapper.convertValue(it, Any::class.java) }
    ListNode::class.java -> buildLinkedList(value, cyclePos)
    TreeNode::class.java -> buildTree(value)
    GraphNode::class.java -> buildGraph(value)
    else -> throw IllegalArgumentException("unsupported parameter type: " + type.name)
}

private fun serialize(value: Any?): Any? = when (value) {
    is ListNode -> linkedListToArray(value)
    is TreeNode -> treeToArray(value)
    is GraphNode -> graphToAdjList(value)
    else -> value
}

private fun resolveTarget(name: String): Pair<Method, Any?> {
    val hostClasses = mutableListOf<Class<*>>()
    try { hostClasses.add(Class.forName("MainKt")) } catch (_: ClassNotFoundException) {}
    try { hostClasses.add(Class.forName("Solution")) } catch (_: ClassNotFoundException) {}

    for (cls in hostClasses) {
        for (m in cls.declaredMethods) {
            if (m.name == name) {
                m.isAccessible = true
                val receiver = if (Modifier.isStatic(m.modifiers)) null
                               else cls.getDeclaredConstructor().newInstance()
                return Pair(m, receiver)
            }
        }
    }
    throw NoSuchMethodException("function '" + name + "' not found")
}

fun main() {
    try {
        val raw = BufferedReader(InputStreamReader(System.` + "`in`" + `)).readText()
        val payload = mapper.readTree(raw)
        val functionName = payload.get("function_name").asText()
        val input = payload.get("input") ?: mapper.createObjectNode()

        val cyclePos = input.get("pos")?.asInt(-1) ?: -1
        val values = mutableListOf<JsonNode>()
        for ((key, value) in input.fields()) {
            if (key != "pos") values.add(value)
        }

        val (method, receiver) = resolveTarget(functionName)
        val types = method.parameterTypes
        if (values.size < types.size) {
            throw IllegalArgumentException("expected " + types.size + " parameters, got " + values.size)
        }
        val args = Array(types.size) { convert(values[it], types[it], cyclePos) }

        val result = method.invoke(receiver, *args)
        val out = mapper.createObjectNode()
        out.set<JsonNode>("result", mapper.valueToTree(serialize(result)))
        println(mapper.writeValueAsString(out))
    } catch (e: Exception) {
        val cause = if (e is InvocationTargetException && e.cause != null) e.cause!! else e
        val out = mapper.createObjectNode()
        out.put("error", cause.toString())
        println(mapper.writeValueAsString(out))
        kotlin.system.exitProcess(1)
    }
}
`
